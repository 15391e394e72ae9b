package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/DRSN-tech/products-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/products-backend/pkg/clients"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keySpace   = "products"
	keyList    = "list"
	keyVersion = "version"
)

// CacheRepo хранит список товаров под ключом текущей версии.
// Любое изменение товаров увеличивает версию, старые списки доживают до истечения TTL.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Version возвращает текущую версию списка, при отсутствии ключа начинает с 1.
func (r *CacheRepo) Version(ctx context.Context) (int64, error) {
	versionKey := r.versionKey()
	if err := r.client.Client.SetNX(ctx, versionKey, 1, 0).Err(); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	version, err := r.client.Client.Get(ctx, versionKey).Int64()
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return version, nil
}

// GetList возвращает закэшированный список указанной версии или nil при промахе.
func (r *CacheRepo) GetList(ctx context.Context, version int64) ([]domain.Product, error) {
	key := r.listKey(version)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Redis unmarshal failed, dropping %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(ctx, key).Err(); err != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return r.conv.ToArrEntity(models), nil
}

// SetList кэширует список под указанной версией с TTL из конфигурации.
func (r *CacheRepo) SetList(ctx context.Context, version int64, products []domain.Product) error {
	data, err := json.Marshal(r.conv.ToArrRedisModel(products))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.listKey(version), data, r.cfg.ListTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Bump увеличивает версию, делая все ранее закэшированные списки недоступными.
func (r *CacheRepo) Bump(ctx context.Context) error {
	if err := r.client.Client.Incr(ctx, r.versionKey()).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *CacheRepo) versionKey() string {
	return r.client.Key(keySpace, keyList, keyVersion)
}

func (r *CacheRepo) listKey(version int64) string {
	return r.client.Key(keySpace, keyList, fmt.Sprintf("v%d", version))
}
