package env

import "os"

// Resolver abstracts environment lookups so locale detection can be tested without touching the process environment.
type Resolver interface {
	// Get returns the value of the environment variable named by the key.
	// It returns an empty string if the variable is not present.
	Get(key string) string

	// Environ returns a slice of strings in the form "key=value" representing the environment,
	// similar to os.Environ.
	Environ() []string
}

// DefaultEnvResolver is the Resolver backed by the os package.
type DefaultEnvResolver struct{}

// Get returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Get(key string) string {
	return os.Getenv(key)
}

// Environ returns a copy of strings representing the environment, as "key=value" pairs.
func (r *DefaultEnvResolver) Environ() []string {
	return os.Environ()
}

// MapResolver is a Resolver over a fixed set of variables.
type MapResolver map[string]string

// Get returns the value stored under key.
func (m MapResolver) Get(key string) string {
	return m[key]
}

// Environ returns the variables as "key=value" pairs.
func (m MapResolver) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}
