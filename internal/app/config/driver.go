package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
		Minio      Minio
		SMTP       SMTP
	}
	PostgresDB struct {
		Host         string
		Port         string
		Username     string
		Password     string
		DBName       string
		SSLMode      string
		MaxOpenConns int
		MaxIdleConns int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
)
