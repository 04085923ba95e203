package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	JWTSecret  string

	// UnifyLoginErrors collapses the distinct "account not found" and
	// "invalid credentials" login messages into one opaque message.
	UnifyLoginErrors bool
}
