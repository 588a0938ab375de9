package handlers

import (
	"github.com/antonioclim/taskpool/internal/services"
	"github.com/antonioclim/taskpool/internal/store"
)

type Handler struct {
	runner *services.Runner
	store  *store.Store
}

func New(runner *services.Runner, st *store.Store) *Handler {
	return &Handler{
		runner: runner,
		store:  st,
	}
}
