package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

var (
	_ ports.CredentialStore = (*MongoAuthRepository)(nil)
	_ ports.ProfileStore    = (*MongoAuthRepository)(nil)
)

// roleCollections pairs a role with its account and profile collections.
type roleCollections struct {
	accounts *mongo.Collection
	profiles *mongo.Collection
}

// MongoAuthRepository stores each role in its own pair of collections.
type MongoAuthRepository struct {
	byRole map[domain.Role]roleCollections
}

func NewAuthRepository(db *mongo.Database) *MongoAuthRepository {
	return &MongoAuthRepository{byRole: map[domain.Role]roleCollections{
		domain.RoleClient: {
			accounts: db.Collection("client"),
			profiles: db.Collection("client_info"),
		},
		domain.RoleFreelancer: {
			accounts: db.Collection("freelancer"),
			profiles: db.Collection("freelancer_info"),
		},
	}}
}

// EnsureIndexes creates the unique email index on every account collection
// and the unique account index on every profile collection.
func (r *MongoAuthRepository) EnsureIndexes(ctx context.Context) error {
	for role, c := range r.byRole {
		if _, err := c.accounts.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return fmt.Errorf("create %s email index: %w", role, err)
		}
		if _, err := c.profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "account_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return fmt.Errorf("create %s profile index: %w", role, err)
		}
	}
	return nil
}

type mongoAccount struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	CreatedAt int64              `bson:"created_at"`
}

type mongoProfile struct {
	AccountID  string   `bson:"account_id"`
	Name       string   `bson:"name"`
	Age        int      `bson:"age"`
	Gender     string   `bson:"gender"`
	PhotoPath  string   `bson:"photo_path,omitempty"`
	Company    string   `bson:"company,omitempty"`
	Headline   string   `bson:"headline,omitempty"`
	Skills     []string `bson:"skills,omitempty"`
	HourlyRate float64  `bson:"hourly_rate,omitempty"`
	CreatedAt  int64    `bson:"created_at"`
}

func (r *MongoAuthRepository) collections(role domain.Role) (roleCollections, error) {
	c, ok := r.byRole[role]
	if !ok {
		return roleCollections{}, domain.ErrInvalidRole
	}
	return c, nil
}

func (r *MongoAuthRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	c, err := r.collections(account.Role)
	if err != nil {
		return nil, err
	}

	doc := mongoAccount{
		Email:     account.Email,
		Password:  account.PasswordHash,
		Role:      string(account.Role),
		CreatedAt: account.CreatedAt.Unix(),
	}
	res, err := c.accounts.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("%w: insert account: %w", domain.ErrStore, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *MongoAuthRepository) FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error) {
	c, err := r.collections(role)
	if err != nil {
		return nil, err
	}

	var ma mongoAccount
	if err := c.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: find account: %w", domain.ErrStore, err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAuthRepository) CreateProfile(ctx context.Context, p *domain.Profile) error {
	c, err := r.collections(p.Role)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(p.AccountID)
	if err != nil {
		return domain.ErrAccountNotFound
	}
	n, err := c.accounts.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%w: check account: %w", domain.ErrStore, err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}

	doc := mongoProfile{
		AccountID:  p.AccountID,
		Name:       p.Name,
		Age:        p.Age,
		Gender:     p.Gender,
		PhotoPath:  p.PhotoPath,
		Company:    p.Company,
		Headline:   p.Headline,
		Skills:     p.Skills,
		HourlyRate: p.HourlyRate,
		CreatedAt:  p.CreatedAt.Unix(),
	}
	if _, err := c.profiles.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("%w: insert profile: %w", domain.ErrStore, err)
	}
	return nil
}

func (r *MongoAuthRepository) FindProfile(ctx context.Context, role domain.Role, accountID string) (*domain.Profile, error) {
	c, err := r.collections(role)
	if err != nil {
		return nil, err
	}

	var mp mongoProfile
	if err := c.profiles.FindOne(ctx, bson.M{"account_id": accountID}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%w: find profile: %w", domain.ErrStore, err)
	}
	return &domain.Profile{
		AccountID:  mp.AccountID,
		Role:       role,
		Name:       mp.Name,
		Age:        mp.Age,
		Gender:     mp.Gender,
		PhotoPath:  mp.PhotoPath,
		Company:    mp.Company,
		Headline:   mp.Headline,
		Skills:     mp.Skills,
		HourlyRate: mp.HourlyRate,
		CreatedAt:  unixToTime(mp.CreatedAt),
	}, nil
}

func (ma mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:           ma.ID.Hex(),
		Email:        ma.Email,
		PasswordHash: ma.Password,
		Role:         domain.Role(ma.Role),
		CreatedAt:    unixToTime(ma.CreatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
