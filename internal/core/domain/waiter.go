package domain

type Waiter struct {
	ID       uint64
	Login    string
	Name     string
	Password string
}
