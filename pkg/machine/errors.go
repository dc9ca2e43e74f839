package machine

type MissingCredentialError struct{}

func NewMissingCredentialError() error {
	return MissingCredentialError{}
}

func (MissingCredentialError) Error() string {
	return "no usable ssh credentials: set a password, a key path, or a key name"
}
