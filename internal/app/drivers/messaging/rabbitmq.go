package messaging

import (
	"fmt"
	"healthtrack-service/internal/app/config"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// NewRabbitMQChannel opens a channel and declares every durable queue the service publishes to.
func NewRabbitMQChannel(conn *amqp091.Connection, queueNames ...string) *amqp091.Channel {
	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open rabbitMQ channel: %s", err.Error())
	}

	for _, queueName := range queueNames {
		_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
		if err != nil {
			log.Fatalf("Failed to declare rabbitMQ queue %s: %s", queueName, err.Error())
		}
	}

	log.Printf("Successfully declared rabbitMQ queues %v", queueNames)
	return channel
}
