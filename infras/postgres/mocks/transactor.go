package mocks

import (
	"context"
	"hostel/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
	err error
}

// WithinTx implements postgres.Transactor. The callback receives a nil tx,
// repository mocks ignore it.
func (t *transactorImpl) WithinTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	if t.err != nil {
		return t.err
	}

	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}

// NewFailingTransactor simulates a transaction that cannot be started.
func NewFailingTransactor(err error) postgres.Transactor {
	return &transactorImpl{err: err}
}
