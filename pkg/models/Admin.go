package models

/*
Admin is stored in the session once the login gate has been passed.
*/
type Admin struct {
	Username string
}
