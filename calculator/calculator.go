package calculator

import (
	"context"
	"fmt"
	"time"

	"github.com/sporadisk/worktock/config"
	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/summary"
)

type Calculator struct {
	Conf          *config.Config
	Subscriber    logentry.Subscriber
	SummaryOutput summary.Output
	Filters       FilterOptions
	Long          bool
	Now           func() time.Time
}

// Init loads the output, if none is set, and fills in defaults.
func (c *Calculator) Init() error {
	if c.Conf == nil {
		c.Conf = &config.Config{}
	}

	if c.Now == nil {
		c.Now = time.Now
	}

	if c.SummaryOutput == nil {
		err := c.LoadSummaryOutput()
		if err != nil {
			return fmt.Errorf("LoadSummaryOutput: %w", err)
		}
	}
	return nil
}

// Start reports on the log every time the subscriber delivers it, until ctx
// is done.
func (c *Calculator) Start(ctx context.Context) error {
	err := c.Init()
	if err != nil {
		return fmt.Errorf("c.Init: %w", err)
	}

	err = c.Subscriber.Subscribe(ctx, c)
	if err != nil {
		return fmt.Errorf("Subscriber.Subscribe: %w", err)
	}
	return nil
}
