package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"complete", Options{MongoURI: "mongodb://localhost", JWTSecret: "s3cret"}, false},
		{"missing mongo uri", Options{JWTSecret: "s3cret"}, true},
		{"missing jwt secret", Options{MongoURI: "mongodb://localhost"}, true},
		{"missing both", Options{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	for env, want := range map[string]bool{
		"production": true,
		"prod":       true,
		"dev":        false,
		"":           false,
	} {
		o := Options{Env: env}
		if got := o.IsProduction(); got != want {
			t.Errorf("IsProduction(%q) = %v; want %v", env, got, want)
		}
	}
}
