package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/autoservicehub/workshop-scheduler/internal/i18n"
)

const ContextLocale = "locale"

// LocaleMiddleware resolves the Accept-Language header once per request and
// stores the matched locale tag for handlers and error writers.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextLocale, i18n.Resolve(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func Locale(c *gin.Context) string {
	if v, ok := c.Get(ContextLocale); ok {
		if locale, ok := v.(string); ok {
			return locale
		}
	}
	return i18n.DefaultLocale
}
