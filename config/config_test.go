package config

import (
	"testing"

	"github.com/spf13/viper"
)

// settings set through viper end up on the Config struct
func Test_New(t *testing.T) {
	viper.Set("out", "oriented.fa")
	viper.Set("consistency", "strict")
	defer viper.Reset()

	c := New()

	if c.Out != "oriented.fa" {
		t.Errorf("Out was %q, expected oriented.fa", c.Out)
	}
	if c.Consistency != "strict" {
		t.Errorf("Consistency was %q, expected strict", c.Consistency)
	}
}
