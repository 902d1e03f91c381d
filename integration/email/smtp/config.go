package smtp

// Config holds SMTP server configuration.
// Port stays textual: implicit TLS is chosen by comparing it to "465",
// and it is converted to a number only when dialing.
type Config struct {
	Host       string `env:"SMTP_HOST,required"`
	Port       string `env:"SMTP_PORT,required"`
	Username   string `env:"SMTP_USER,required"`
	Password   string `env:"SMTP_PASS,required"`
	SenderName string `env:"SMTP_SENDER_NAME" envDefault:"AI Weekly Roundup"`
}

// ImplicitTLS reports whether the connection must be TLS from the first byte.
// Any other port starts in plaintext and upgrades with STARTTLS when the
// server offers it.
func (c Config) ImplicitTLS() bool {
	return c.Port == "465"
}
