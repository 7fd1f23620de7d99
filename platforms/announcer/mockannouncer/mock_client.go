package mockannouncer

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chattanoogahockey/scorekeeper-sub003/platforms/announcer"
)

type Client struct {
	mock.Mock
}

func (c *Client) GenerateCommentary(ctx context.Context, ectx announcer.EventContext) (*announcer.Commentary, error) {
	args := c.Called(ctx, ectx)

	var r *announcer.Commentary
	if args.Get(0) != nil {
		r = args.Get(0).(*announcer.Commentary)
	}
	return r, args.Error(1)
}

func (c *Client) Synthesize(ctx context.Context, text, voice string) (*announcer.AudioClip, error) {
	args := c.Called(ctx, text, voice)

	var r *announcer.AudioClip
	if args.Get(0) != nil {
		r = args.Get(0).(*announcer.AudioClip)
	}
	return r, args.Error(1)
}
