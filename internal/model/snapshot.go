package model

type AccountSnapshot struct {
	Client    ClientID
	Available Money
	Held      Money
	Total     Money
	Locked    bool
}

type Stats struct {
	Processed int
	Applied   int
	Rejected  int
}
