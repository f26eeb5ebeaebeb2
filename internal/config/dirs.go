package config

import "os"

var (
	userConfigDir = os.UserConfigDir
	userHomeDir   = os.UserHomeDir
)
