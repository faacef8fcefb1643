package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/psqlbuilder"
	"github.com/barberhub/booking-service/pkg/txmanager"
)

// Repository репозиторий каталога барбершопов и услуг
// Каталог неизменяем с точки зрения движка бронирования: только чтение
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListShops возвращает все барбершопы, отсортированные по названию
func (r *Repository) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"phones",
		"image_url",
		"created_at",
		"updated_at",
	).
		From("shops").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListShops - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListShops - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListShops - rows error: %v", ErrScanRow, err)
	}

	return shops, nil
}

// GetShopByID получает барбершоп по ID
func (r *Repository) GetShopByID(ctx context.Context, id int64) (*domain.Shop, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"phones",
		"image_url",
		"created_at",
		"updated_at",
	).
		From("shops").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetShopByID - build select query: %v", ErrBuildQuery, err)
	}

	var shop domain.Shop
	var phones pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&shop.ID,
		&shop.Name,
		&shop.Address,
		&phones,
		&shop.ImageURL,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetShopByID - scan shop: %v", ErrScanRow, err)
	}

	shop.Phones = phones
	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time

	return &shop, nil
}

// ListServicesByShop возвращает услуги барбершопа
func (r *Repository) ListServicesByShop(ctx context.Context, shopID int64) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"shop_id",
		"name",
		"description",
		"price",
		"image_url",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&service.ID,
			&service.ShopID,
			&service.Name,
			&service.Description,
			&service.Price,
			&service.ImageURL,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServicesByShop - scan row: %v", ErrScanRow, err)
		}

		service.CreatedAt = createdAt.Time
		service.UpdatedAt = updatedAt.Time
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServicesByShop - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"shop_id",
		"name",
		"description",
		"price",
		"image_url",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.ShopID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.ImageURL,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

// bookingDetailsColumns колонки выборки бронирования с присоединёнными услугой и барбершопом
var bookingDetailsColumns = []string{
	"b.id",
	"b.user_id",
	"b.service_id",
	"b.scheduled_at",
	"b.created_at",
	"b.updated_at",
	"s.name",
	"s.price",
	"s.image_url",
	"sh.id",
	"sh.name",
	"sh.address",
	"sh.image_url",
	"sh.phones",
}

// GetBookingDetailsByID получает бронирование с данными услуги и барбершопа
// DTO пути отображения: движку доступности такой состав не нужен
func (r *Repository) GetBookingDetailsByID(ctx context.Context, bookingID int64) (*domain.BookingDetails, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingDetailsColumns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Join("shops sh ON sh.id = s.shop_id").
		Where(squirrel.Eq{"b.id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingDetailsByID - build select query: %v", ErrBuildQuery, err)
	}

	details, err := scanBookingDetails(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingDetailsByID - scan row: %v", ErrScanRow, err)
	}

	return details, nil
}

// GetBookingDetailsByUserID получает бронирования пользователя с данными услуг и барбершопов
func (r *Repository) GetBookingDetailsByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetails, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingDetailsColumns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Join("shops sh ON sh.id = s.shop_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingDetailsByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingDetailsByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		details, err := scanBookingDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBookingDetailsByUserID - scan row: %v", ErrScanRow, err)
		}
		result = append(result, details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookingDetailsByUserID - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingDetails(row rowScanner) (*domain.BookingDetails, error) {
	var details domain.BookingDetails
	var phones pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&details.ID,
		&details.UserID,
		&details.ServiceID,
		&details.ScheduledAt,
		&createdAt,
		&updatedAt,
		&details.ServiceName,
		&details.ServicePrice,
		&details.ServiceImage,
		&details.ShopID,
		&details.ShopName,
		&details.ShopAddress,
		&details.ShopImageURL,
		&phones,
	)
	if err != nil {
		return nil, err
	}

	details.ShopPhones = phones
	details.CreatedAt = createdAt.Time
	details.UpdatedAt = updatedAt.Time

	return &details, nil
}

func scanShop(rows *sql.Rows) (*domain.Shop, error) {
	var shop domain.Shop
	var phones pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&shop.ID,
		&shop.Name,
		&shop.Address,
		&phones,
		&shop.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanShop - scan row: %v", ErrScanRow, err)
	}

	shop.Phones = phones
	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time

	return &shop, nil
}
