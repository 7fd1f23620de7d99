package testutils

import (
	"github.com/itbasis/go-clock"
)

// TestController bundles the fake upstream servers a controller needs.
type TestController struct {
	Clock         *clock.Mock
	fakeAnnouncer *FakeAnnouncerServer
	fakeSite      *FakeLeagueSiteServer
}

func (c *TestController) Close() {
	c.fakeAnnouncer.Close()
	c.fakeSite.Close()
}

func (c *TestController) AnnouncerURL() string {
	return c.fakeAnnouncer.URL()
}

func (c *TestController) SiteURL() string {
	return c.fakeSite.URL()
}

func NewTestController(db *TestDB) *TestController {
	return &TestController{
		Clock:         db.Clock,
		fakeAnnouncer: NewFakeAnnouncerServer(),
		fakeSite:      NewFakeLeagueSiteServer(),
	}
}
