package api

import (
	"autogasto/config"
)

// SafeErrorMessage en modo release no expone detalles internos del error
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
