package catalogrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"gosalon/internal/domain"
	"gosalon/internal/errors"
	"gosalon/internal/pkg/cache"
	"gosalon/internal/pkg/logger"
)

// Chaves de cache do catálogo.
const (
	stylistsCacheKey = "catalog:stylists"
	servicesCacheKey = "catalog:services"
	stylistCacheKey  = "catalog:stylist:%s"
	serviceCacheKey  = "catalog:service:%s"
)

// CatalogRepository lê estilistas e serviços. O catálogo muda pouco, então usamos
// Cache-Aside no Redis. Cache nil desliga o cache.
type CatalogRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewCatalogRepository injeta as dependências de infraestrutura (DB e Cache).
func NewCatalogRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *CatalogRepository {
	return &CatalogRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// ListStylists lista todos os estilistas.
func (r *CatalogRepository) ListStylists(ctx context.Context) ([]domain.Stylist, error) {
	var stylists []domain.Stylist
	if r.fromCache(ctx, stylistsCacheKey, &stylists) {
		return stylists, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT id, name, description, email FROM stylists ORDER BY name`)
	if err != nil {
		r.logger.Error("Falha ao listar estilistas.", err)
		return nil, errors.NewDBError("Falha ao listar estilistas", err)
	}
	defer rows.Close()

	stylists = []domain.Stylist{}
	for rows.Next() {
		var s domain.Stylist
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Email); err != nil {
			return nil, errors.NewDBError("Falha ao mapear estilistas do DB", err)
		}
		stylists = append(stylists, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de estilistas", err)
	}

	r.toCache(ctx, stylistsCacheKey, stylists)
	return stylists, nil
}

// ListServices lista todos os serviços.
func (r *CatalogRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if r.fromCache(ctx, servicesCacheKey, &services) {
		return services, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT id, name, price, duration_minutes FROM services ORDER BY name`)
	if err != nil {
		r.logger.Error("Falha ao listar serviços.", err)
		return nil, errors.NewDBError("Falha ao listar servicios", err)
	}
	defer rows.Close()

	services = []domain.Service{}
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes); err != nil {
			return nil, errors.NewDBError("Falha ao mapear serviços do DB", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de serviços", err)
	}

	r.toCache(ctx, servicesCacheKey, services)
	return services, nil
}

// FindStylist busca um estilista pelo ID.
func (r *CatalogRepository) FindStylist(ctx context.Context, id domain.ID) (domain.Stylist, error) {
	key := fmt.Sprintf(stylistCacheKey, id)

	var s domain.Stylist
	if r.fromCache(ctx, key, &s) {
		return s, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	err := r.DB.QueryRowContext(ctxTimeout, `SELECT id, name, description, email FROM stylists WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.Email)
	if err == sql.ErrNoRows {
		return domain.Stylist{}, errors.NewNotFoundError(fmt.Sprintf("El estilista %s no existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar estilista.", err)
		return domain.Stylist{}, errors.NewDBError("Falha ao buscar estilista", err)
	}

	r.toCache(ctx, key, s)
	return s, nil
}

// FindService busca um serviço pelo ID.
func (r *CatalogRepository) FindService(ctx context.Context, id domain.ID) (domain.Service, error) {
	key := fmt.Sprintf(serviceCacheKey, id)

	var s domain.Service
	if r.fromCache(ctx, key, &s) {
		return s, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	err := r.DB.QueryRowContext(ctxTimeout, `SELECT id, name, price, duration_minutes FROM services WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes)
	if err == sql.ErrNoRows {
		return domain.Service{}, errors.NewNotFoundError(fmt.Sprintf("El servicio %s no existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar serviço.", err)
		return domain.Service{}, errors.NewDBError("Falha ao buscar servicio", err)
	}

	r.toCache(ctx, key, s)
	return s, nil
}

// fromCache devolve true num HIT. Falhas do Redis são logadas e tratadas como MISS.
func (r *CatalogRepository) fromCache(ctx context.Context, key string, dst interface{}) bool {
	if r.Cache == nil {
		return false
	}
	cached, err := r.Cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			r.logger.Warn("Falha ao ler do cache Redis.", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		r.logger.Warn("Entrada de cache inválida, ignorando.", map[string]interface{}{"key": key})
		return false
	}
	r.logger.Debug("Cache HIT.", map[string]interface{}{"key": key})
	return true
}

func (r *CatalogRepository) toCache(ctx context.Context, key string, v interface{}) {
	if r.Cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.CacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar no cache Redis.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
