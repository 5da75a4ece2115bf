package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/Tiliavir/temps/internal/timecalc"
)

// clockValue is a pflag.Value holding a time of day written as HH:MM.
type clockValue time.Duration

var _ pflag.Value = (*clockValue)(nil)

func (c *clockValue) String() string {
	d := time.Duration(*c)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func (c *clockValue) Set(s string) error {
	d, err := timecalc.ParseClock(s)
	if err != nil {
		return err
	}
	*c = clockValue(d)
	return nil
}

func (c *clockValue) Type() string {
	return "HH:MM"
}

func (c *clockValue) Duration() time.Duration {
	return time.Duration(*c)
}
