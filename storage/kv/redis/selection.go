package rediskv

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/shulehq/shule/core"
	"github.com/shulehq/shule/core/access"
)

// Open connects to redis and verifies the connection.
func Open(conf *core.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Address(),
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}
	return client, nil
}

type selectionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ access.SelectionStore = (*selectionStore)(nil)

func NewSelectionStore(client *redis.Client, conf *core.Config) access.SelectionStore {
	return &selectionStore{client: client, ttl: conf.Session.SelectionTTL}
}

func selectionKey(principal access.PrincipalID) string {
	return "access:selection:" + string(principal)
}

func (s *selectionStore) SaveSelection(ctx context.Context, principal access.PrincipalID, sel access.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return errors.Wrap(err, "marshalling selection")
	}
	return errors.Wrap(s.client.Set(ctx, selectionKey(principal), data, s.ttl).Err(), "saving selection")
}

func (s *selectionStore) LoadSelection(ctx context.Context, principal access.PrincipalID) (*access.Selection, error) {
	data, err := s.client.Get(ctx, selectionKey(principal)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading selection")
	}

	sel := new(access.Selection)
	if err = json.Unmarshal(data, sel); err != nil {
		return nil, errors.Wrap(err, "unmarshalling selection")
	}
	return sel, nil
}

func (s *selectionStore) ClearSelection(ctx context.Context, principal access.PrincipalID) error {
	return errors.Wrap(s.client.Del(ctx, selectionKey(principal)).Err(), "clearing selection")
}
