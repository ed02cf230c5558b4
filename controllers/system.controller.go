package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/productr/server/connect"
	"github.com/productr/server/errors"
)

// System is a struct that contains system level controllers
type System struct {
	Conn *connect.Connector
}

// Health is a function that is notifys the system health
func (s *System) Health(c *fiber.Ctx) error {
	if err := s.Conn.R.Challenge.Ping(c.Context()).Err(); err != nil {
		return errors.InternalServerErr(c)
	}

	db, err := s.Conn.DB.DB()
	if err != nil {
		return errors.InternalServerErr(c)
	}
	if err := db.PingContext(c.Context()); err != nil {
		return errors.InternalServerErr(c)
	}

	return errors.Done(c, "Backend is running")
}
