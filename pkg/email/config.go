package email

// Transport names accepted by Config.Transport.
const (
	TransportSMTP     = "smtp"
	TransportPostmark = "postmark"
	TransportDev      = "dev"
)

// Config selects and configures the transport used for preview sends.
type Config struct {
	Transport string `env:"PREVIEW_TRANSPORT" envDefault:"smtp"`
	SendTo    string `env:"PREVIEW_SEND_TO" envDefault:"test@example.com"`
	DevDir    string `env:"PREVIEW_DEV_DIR" envDefault:"tmp/emails"`

	SMTP     SMTPConfig `envPrefix:"MAILTRAP_"`
	Postmark PostmarkConfig
}

// SMTPConfig holds the sandbox inbox credentials. Host and Port default to
// the Mailtrap sandbox; User and Pass have no defaults and must be set.
type SMTPConfig struct {
	Host     string `env:"HOST" envDefault:"sandbox.smtp.mailtrap.io"`
	Port     int    `env:"PORT" envDefault:"2525"`
	User     string `env:"USER"`
	Pass     string `env:"PASS"`
	From     string `env:"FROM" envDefault:"noreply@directhomemedical.com"`
	FromName string `env:"FROM_NAME" envDefault:"DirectHomeMedical"`
}

// PostmarkConfig holds Postmark credentials for live preview sends.
// SenderEmail and SupportEmail establish the sender identity and reply-to
// behavior of every outbound message.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail  string `env:"SENDER_EMAIL"`
	SupportEmail string `env:"SUPPORT_EMAIL"`
}
