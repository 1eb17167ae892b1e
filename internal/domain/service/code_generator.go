package service

// CodeGenerator produces the one-time numeric login codes.
type CodeGenerator interface {
	// Generate returns a uniformly random 6-digit code as a zero-padded
	// numeric string in the range 000000-999999.
	Generate() (string, error)
}
