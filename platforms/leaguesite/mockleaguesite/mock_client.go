package mockleaguesite

import (
	"github.com/stretchr/testify/mock"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadSchedule() ([]model.Game, error) {
	args := c.Called()

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}
