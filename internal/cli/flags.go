package cli

import (
	"github.com/krisalay/bounded-cache/internal/config"
	"github.com/spf13/pflag"
)

// bindFlag lets a command flag override a config key when the flag is set.
// BindPFlag only fails on a nil flag, which would be a programming error here.
func bindFlag(m *config.Manager, key string, flag *pflag.Flag) {
	if err := m.Viper().BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
