package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConnectionString(t *testing.T) {
	testCases := []struct {
		name   string
		config Config
		want   string
	}{
		{
			name: "plain",
			config: Config{
				Host:     "db",
				Port:     5432,
				Database: "orderflow",
				Username: "postgres",
				Password: "secret",
				SSLMode:  "disable",
			},
			want: "postgres://postgres:secret@db:5432/orderflow?sslmode=disable",
		},
		{
			name: "with certificates",
			config: Config{
				Host:        "db",
				Port:        6432,
				Database:    "orderflow",
				Username:    "gen",
				SSLMode:     "verify-full",
				SSLCert:     "/c.pem",
				SSLKey:      "/k.pem",
				SSLRootCert: "/ca.pem",
			},
			want: "postgres://gen:@db:6432/orderflow?sslmode=verify-full&sslcert=/c.pem&sslkey=/k.pem&sslrootcert=/ca.pem",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildConnectionString(tc.config))
		})
	}
}
