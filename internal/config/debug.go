package config

import "os"

func IsDebug() bool {
	return os.Getenv("WIKIRAG_DEBUG") == "1"
}
