package events

import (
	"context"
	"encoding/json"
	"log"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// redisPublishAPI is the part of *redis.Client the publisher needs.
type redisPublishAPI interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher pushes workflow events as JSON on a Redis pub/sub channel
// that the dashboards subscribe to.
type RedisPublisher struct {
	client  redisPublishAPI
	channel string
}

var _ interfaces.IEventPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client redisPublishAPI, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// ConnectRedis opens a client and checks it answers PING.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	log.Printf("[events][redis] connected addr=%s db=%d", addr, db)
	return client, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, e entities.Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	receivers, err := p.client.Publish(ctx, p.channel, b).Result()
	if err != nil {
		return err
	}
	log.Printf("[events][redis] published type=%s entity_id=%s receivers=%d", e.Type, e.EntityID, receivers)
	return nil
}

// LogPublisher is used when Redis is not configured: events only reach the log.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, e entities.Event) error {
	log.Printf("[events][log] type=%s entity_id=%s workshop_id=%s", e.Type, e.EntityID, e.WorkshopID)
	return nil
}
