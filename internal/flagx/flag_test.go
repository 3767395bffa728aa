package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-d", "-e"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"separate value", []string{"-a", ":50051", "-c", "cfg.json"}, []string{"-a", ":50051"}},
		{"equals form", []string{"-d=postgres://db", "-x=1"}, []string{"-d=postgres://db"}},
		{"unknown flags and positionals dropped", []string{"-x", "1", "--y=2", "register"}, []string{}},
		{"trailing flag without value", []string{"-e"}, []string{"-e"}},
		{"next flag is not a value", []string{"-a", "-d", "db"}, []string{"-a", "-d", "db"}},
		{"repeated flag keeps order", []string{"-e", "10", "-e", "20"}, []string{"-e", "10", "-e", "20"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, serverFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"bin", "-c", "/etc/zkp/server.json"}, "/etc/zkp/server.json"},
		{"long", []string{"bin", "-config", "/etc/zkp/client.json"}, "/etc/zkp/client.json"},
		{"mixed with other flags", []string{"bin", "-a", ":1", "-c", "cfg.json", "-e", "5"}, "cfg.json"},
		{"absent", []string{"bin", "-a", ":1"}, ""},
		{"last wins", []string{"bin", "-c", "one.json", "-config", "two.json"}, "two.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
