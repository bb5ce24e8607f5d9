package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/barbershop-api/internal/db"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

type UserMongoRepository struct {
	cols *db.Collections

	// transactional runs ChangeRoleAs inside a session transaction, which
	// needs a replica set or mongos.
	transactional bool
}

func NewUserMongoRepository(cols *db.Collections, transactional bool) *UserMongoRepository {
	return &UserMongoRepository{cols: cols, transactional: transactional}
}

func (r *UserMongoRepository) List(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.cols.Users, nil)
}

func (r *UserMongoRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.cols.Users, bson.M{"email": email})
}

func (r *UserMongoRepository) Upsert(ctx context.Context, email string, u models.User) (*store.UpdateResult, error) {
	u.ID = primitive.NilObjectID
	u.Email = email

	res, err := r.cols.Users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": u},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *UserMongoRepository) SetImage(ctx context.Context, email string, img string) (*store.UpdateResult, error) {
	res, err := r.cols.Users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"img": img}},
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *UserMongoRepository) ChangeRoleAs(
	ctx context.Context,
	requester string,
	allowed user.Policy,
	target string,
	role string,
) (*store.UpdateResult, error) {
	if !r.transactional {
		return r.changeRole(ctx, requester, allowed, target, role)
	}

	sess, err := r.cols.Client.StartSession()
	if err != nil {
		return nil, err
	}
	defer sess.EndSession(ctx)

	out, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return r.changeRole(sc, requester, allowed, target, role)
	})
	if err != nil {
		return nil, err
	}
	return out.(*store.UpdateResult), nil
}

func (r *UserMongoRepository) changeRole(
	ctx context.Context,
	requester string,
	allowed user.Policy,
	target string,
	role string,
) (*store.UpdateResult, error) {
	acting, err := r.GetByEmail(ctx, requester)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, user.ErrForbidden
		}
		return nil, err
	}
	if !allowed(*acting) {
		return nil, user.ErrForbidden
	}

	res, err := r.cols.Users.UpdateOne(ctx,
		bson.M{"email": target},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

var _ user.Repository = (*UserMongoRepository)(nil)

// Promote sets role and/or position directly, creating the user when absent.
// A nil pointer leaves that field unchanged; an empty string clears it.
func (r *UserMongoRepository) Promote(ctx context.Context, email string, role, position *string) (*store.UpdateResult, error) {
	set := bson.M{"email": email}
	unset := bson.M{}

	for field, v := range map[string]*string{"role": role, "position": position} {
		switch {
		case v == nil:
		case *v == "":
			unset[field] = ""
		default:
			set[field] = *v
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.cols.Users.UpdateOne(ctx,
		bson.M{"email": email},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}
