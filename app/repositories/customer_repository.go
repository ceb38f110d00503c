package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

type CustomerRepositoryImpl interface {
	GetAll(ctx context.Context, status string) ([]models.Customer, error)
	GetByID(ctx context.Context, id uint64) (*models.Customer, error)
	NextCustomerNumber(ctx context.Context) (string, error)
	ExistsByPersonalEmail(ctx context.Context, email string, excludeID uint64) (bool, error)
	CreateWithUser(ctx context.Context, user *models.User, customer *models.Customer) error
	UpdateWithUser(ctx context.Context, user *models.User, customer *models.Customer) error
	DeleteWithUser(ctx context.Context, customer *models.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepositoryImpl {
	return &customerRepository{db: db}
}

// GetAll filters on the owning user's status, since customer status lives
// on the user row.
func (r *customerRepository) GetAll(ctx context.Context, status string) ([]models.Customer, error) {
	query := r.db.WithContext(ctx).Preload("User")
	if status != "" {
		query = query.
			Joins("JOIN users ON users.id = customers.user_id").
			Where("users.status = ?", status)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uint64) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Preload("User").First(&customer, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// NextCustomerNumber produces the next CUST-prefixed identification number.
// Numbers advance past the highest suffix ever issued, so deleting a customer
// never frees a number for reuse.
func (r *customerRepository) NextCustomerNumber(ctx context.Context) (string, error) {
	return nextCustomerNumber(r.db.WithContext(ctx))
}

func nextCustomerNumber(tx *gorm.DB) (string, error) {
	var numbers []string
	if err := tx.Model(&models.Customer{}).Pluck("customer_id", &numbers).Error; err != nil {
		return "", err
	}

	max := 0
	for _, number := range numbers {
		suffix, ok := strings.CutPrefix(number, "CUST")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("CUST%04d", max+1), nil
}

func (r *customerRepository) ExistsByPersonalEmail(ctx context.Context, email string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Customer{}).Where("personal_email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWithUser inserts the user and customer rows atomically, assigning the
// customer number inside the transaction so concurrent creates cannot race it.
func (r *customerRepository) CreateWithUser(ctx context.Context, user *models.User, customer *models.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		number, err := nextCustomerNumber(tx)
		if err != nil {
			return err
		}
		customer.CustomerID = number
		customer.UserID = user.ID
		return tx.Create(customer).Error
	})
}

func (r *customerRepository) UpdateWithUser(ctx context.Context, user *models.User, customer *models.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(customer).Error
	})
}

// DeleteWithUser removes the customer and its owning user atomically.
func (r *customerRepository) DeleteWithUser(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Customer{}, "id = ?", customer.ID).Error; err != nil {
			return err
		}
		if customer.UserID != 0 {
			if err := tx.Delete(&models.User{}, "id = ?", customer.UserID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
