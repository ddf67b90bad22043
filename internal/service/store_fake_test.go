package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// fakeStore is an in-memory repository.Store. The confirmation coordinator
// needs reservations staged by earlier quotes of a batch to be visible to
// later availability checks in the same transaction, so the fake is
// stateful rather than expectation-based. InTx snapshots the mutable state
// and restores it when fn fails, which mirrors a rollback.
type fakeStore struct {
	companies map[string]domain.CarRentalCompany
	carTypes  map[string]map[string]domain.CarType
	cars      []domain.Car

	reservations  []domain.Reservation
	nextResID     int64
	orders        map[string]domain.Order
	notifications []domain.Notification

	createReservationErr error
	listOverlappingErr   error
	markConfirmedErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies: make(map[string]domain.CarRentalCompany),
		carTypes:  make(map[string]map[string]domain.CarType),
		nextResID: 1,
		orders:    make(map[string]domain.Order),
	}
}

// addCompany registers a company with one car type and count cars with ids
// 1..count.
func (f *fakeStore) addCompany(name, carType string, pricePerDayCents int32, count int32) {
	f.companies[name] = domain.CarRentalCompany{Name: name}
	if f.carTypes[name] == nil {
		f.carTypes[name] = make(map[string]domain.CarType)
	}
	f.carTypes[name][carType] = domain.CarType{
		CompanyName:      name,
		Name:             carType,
		NbOfSeats:        5,
		PricePerDayCents: pricePerDayCents,
	}
	var nextID int32 = 1
	for _, c := range f.cars {
		if c.CompanyName == name && c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	for i := int32(0); i < count; i++ {
		f.cars = append(f.cars, domain.Car{CompanyName: name, CarTypeName: carType, ID: nextID + i})
	}
}

func (f *fakeStore) Companies() repository.CompanyRepository          { return (*fakeCompanyRepo)(f) }
func (f *fakeStore) Cars() repository.CarRepository                   { return (*fakeCarRepo)(f) }
func (f *fakeStore) Reservations() repository.ReservationRepository   { return (*fakeReservationRepo)(f) }
func (f *fakeStore) Orders() repository.OrderRepository               { return (*fakeOrderRepo)(f) }
func (f *fakeStore) Notifications() repository.NotificationRepository { return (*fakeNotificationRepo)(f) }

func (f *fakeStore) InTx(ctx context.Context, fn func(repository.Store) error) error {
	savedRes := append([]domain.Reservation(nil), f.reservations...)
	savedResID := f.nextResID
	savedOrders := make(map[string]domain.Order, len(f.orders))
	for k, v := range f.orders {
		savedOrders[k] = v
	}
	savedNotes := append([]domain.Notification(nil), f.notifications...)

	if err := fn(f); err != nil {
		f.reservations = savedRes
		f.nextResID = savedResID
		f.orders = savedOrders
		f.notifications = savedNotes
		return err
	}
	return nil
}

type fakeCompanyRepo fakeStore

func (f *fakeCompanyRepo) Create(ctx context.Context, company *domain.CarRentalCompany) error {
	f.companies[company.Name] = *company
	return nil
}

func (f *fakeCompanyRepo) GetByName(ctx context.Context, name string) (*domain.CarRentalCompany, error) {
	c, ok := f.companies[name]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (f *fakeCompanyRepo) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	for name := range f.companies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeCompanyRepo) CreateCarType(ctx context.Context, carType *domain.CarType) error {
	if f.carTypes[carType.CompanyName] == nil {
		f.carTypes[carType.CompanyName] = make(map[string]domain.CarType)
	}
	f.carTypes[carType.CompanyName][carType.Name] = *carType
	return nil
}

func (f *fakeCompanyRepo) GetCarType(ctx context.Context, companyName, carTypeName string) (*domain.CarType, error) {
	ct, ok := f.carTypes[companyName][carTypeName]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &ct, nil
}

func (f *fakeCompanyRepo) ListCarTypes(ctx context.Context, companyName string) ([]domain.CarType, error) {
	var types []domain.CarType
	for _, ct := range f.carTypes[companyName] {
		types = append(types, ct)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types, nil
}

type fakeCarRepo fakeStore

func (f *fakeCarRepo) Create(ctx context.Context, car *domain.Car) error {
	f.cars = append(f.cars, *car)
	return nil
}

func (f *fakeCarRepo) ListByCompany(ctx context.Context, companyName, carTypeName string) ([]domain.Car, error) {
	var cars []domain.Car
	for _, c := range f.cars {
		if c.CompanyName != companyName {
			continue
		}
		if carTypeName != "" && c.CarTypeName != carTypeName {
			continue
		}
		cars = append(cars, c)
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].ID < cars[j].ID })
	return cars, nil
}

type fakeReservationRepo fakeStore

func (f *fakeReservationRepo) Create(ctx context.Context, rv *domain.Reservation) error {
	if f.createReservationErr != nil {
		return f.createReservationErr
	}
	rv.ID = f.nextResID
	f.nextResID++
	rv.CreatedOn = time.Now()
	f.reservations = append(f.reservations, *rv)
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	for _, rv := range f.reservations {
		if rv.ID == id {
			return &rv, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id int64, renterName string) error {
	for i, rv := range f.reservations {
		if rv.ID == id && rv.RenterName == renterName {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeReservationRepo) ListByRenter(ctx context.Context, renterName string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, rv := range f.reservations {
		if rv.RenterName == renterName {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListOverlapping(ctx context.Context, companyName string, start, end time.Time) ([]domain.Reservation, error) {
	if f.listOverlappingErr != nil {
		return nil, f.listOverlappingErr
	}
	var out []domain.Reservation
	for _, rv := range f.reservations {
		if rv.CompanyName == companyName && rv.Overlaps(start, end) {
			out = append(out, rv)
		}
	}
	return out, nil
}

type fakeOrderRepo fakeStore

func (f *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	payload, err := json.Marshal(o.Quotes)
	if err != nil {
		return err
	}
	o.Payload = payload
	o.CreatedOn = time.Now()
	o.UpdatedOn = o.CreatedOn
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &o, nil
}

func (f *fakeOrderRepo) ListByRenter(ctx context.Context, renterName string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.RenterName == renterName {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) DequeuePending(ctx context.Context, limit int32) ([]domain.Order, error) {
	var out []domain.Order
	for id, o := range f.orders {
		if o.Status != domain.OrderStatusPending || int32(len(out)) >= limit {
			continue
		}
		o.Attempts++
		f.orders[id] = o
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) MarkConfirmed(ctx context.Context, id string) error {
	if f.markConfirmedErr != nil {
		return f.markConfirmedErr
	}
	o, ok := f.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = domain.OrderStatusConfirmed
	o.LastError = ""
	f.orders[id] = o
	return nil
}

func (f *fakeOrderRepo) MarkFailed(ctx context.Context, id, reason string) error {
	o, ok := f.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = domain.OrderStatusFailed
	o.LastError = reason
	f.orders[id] = o
	return nil
}

func (f *fakeOrderRepo) Release(ctx context.Context, id, reason string) error {
	o, ok := f.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = domain.OrderStatusPending
	o.LastError = reason
	f.orders[id] = o
	return nil
}

type fakeNotificationRepo fakeStore

func (f *fakeNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	note.ID = int32(len(f.notifications) + 1)
	f.notifications = append(f.notifications, *note)
	return nil
}

func (f *fakeNotificationRepo) ListByRenter(ctx context.Context, renterName string, limit, offset int32) ([]domain.Notification, int32, error) {
	var all []domain.Notification
	for _, n := range f.notifications {
		if n.RenterName == renterName {
			all = append(all, n)
		}
	}
	total := int32(len(all))
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, id int32, renterName string) error {
	for i, n := range f.notifications {
		if n.ID == id && n.RenterName == renterName {
			f.notifications[i].IsRead = true
			return nil
		}
	}
	return sql.ErrNoRows
}
