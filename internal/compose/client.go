// Where: internal/compose/client.go
// What: Docker client constructor.
// Why: Status and the overlap guard need a daemon connection; build it one way.
package compose

import "github.com/docker/docker/client"

// NewDockerClient connects to the Docker daemon using the standard DOCKER_*
// environment variables, negotiating the API version with the daemon.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}
