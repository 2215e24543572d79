package service

import (
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/store"
	"github.com/MKhiriev/go-block-calendar/internal/utils"
)

type ClientServices struct {
	IdentityService IdentityService
}

func NewClientServices(localStore store.LocalStorage, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		IdentityService: NewIdentityService(localStore, utils.NewUUIDGenerator(), logger),
	}
}
