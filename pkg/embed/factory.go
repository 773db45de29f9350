package embed

// DefaultEmbedFactory implements EmbedFactory interface
type DefaultEmbedFactory struct{}

// NewEmbedFactory creates a new DefaultEmbedFactory instance
func NewEmbedFactory() EmbedFactory {
	return &DefaultEmbedFactory{}
}

// CreateGuardianEmbedBuilder creates a GuardianEmbedBuilder instance
func (f *DefaultEmbedFactory) CreateGuardianEmbedBuilder() GuardianEmbedBuilder {
	return NewGuardianEmbedBuilder()
}

// CreateBasicEmbedBuilder creates a basic EmbedBuilder instance
func (f *DefaultEmbedFactory) CreateBasicEmbedBuilder() EmbedBuilder {
	return NewGuardianEmbedBuilder() // GuardianEmbeds implements EmbedBuilder interface
}

// Global factory instance for convenience
var globalFactory EmbedFactory = NewEmbedFactory()

// CreateGuardianEmbeds creates a GuardianEmbedBuilder using the global factory
func CreateGuardianEmbeds() GuardianEmbedBuilder {
	return globalFactory.CreateGuardianEmbedBuilder()
}

// CreateBasicEmbeds creates a basic EmbedBuilder using the global factory
func CreateBasicEmbeds() EmbedBuilder {
	return globalFactory.CreateBasicEmbedBuilder()
}

// CreateErrorEmbeds creates an error-specific builder
func CreateErrorEmbeds() *ErrorEmbeds {
	return NewErrorEmbedBuilder()
}
