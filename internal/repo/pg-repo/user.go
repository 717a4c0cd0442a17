package pgrepo

import (
	"context"

	"github.com/GlebRadaev/railtickets/internal/domain"
)

const (
	insertUserQuery = `
		INSERT INTO users (id, surname, name, phone, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	selectUserQuery        = "SELECT id, surname, name, phone, email, password_hash FROM users WHERE id = $1"
	selectUserByEmailQuery = "SELECT id, surname, name, phone, email, password_hash FROM users WHERE email = $1"
	updateUserQuery        = `
		UPDATE users
		SET surname = $1, name = $2, phone = $3, email = $4, password_hash = $5
		WHERE id = $6
	`
)

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	r.assignID(&user.ID)
	_, err := r.db.Exec(ctx, insertUserQuery, user.ID, user.Surname, user.Name, user.Phone, user.Email, user.Password)
	if err != nil {
		return insertErr("create user", "user", user.ID, err)
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, selectUserQuery, id).
		Scan(&user.ID, &user.Surname, &user.Name, &user.Phone, &user.Email, &user.Password)
	if err != nil {
		return nil, rowErr("get user", "user", id, err)
	}
	return &user, nil
}

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, selectUserByEmailQuery, email).
		Scan(&user.ID, &user.Surname, &user.Name, &user.Phone, &user.Email, &user.Password)
	if err != nil {
		return nil, rowErr("find user by email", "user with email", email, err)
	}
	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, updateUserQuery, user.Surname, user.Name, user.Phone, user.Email, user.Password, user.ID)
	return affectedOne("update user", "user", user.ID, tag, err)
}
