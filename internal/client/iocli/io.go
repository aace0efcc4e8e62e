package iocli

// IO abstracts terminal interaction so commands can be tested with a
// scripted fake.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
