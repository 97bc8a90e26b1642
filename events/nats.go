package events

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
)

const SubjectPrefix = "mocktrade."

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(conn *nats.Conn) *NatsPublisher {
	return &NatsPublisher{conn: conn}
}

func (p *NatsPublisher) Publish(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.conn.Publish(SubjectPrefix+event.Kind, payload)
}
