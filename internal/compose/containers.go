// Where: internal/compose/containers.go
// What: Docker SDK helpers for container state.
// Why: Detect whether the aggregator service is already running before starting another.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
)

const (
	composeProjectLabel = "com.docker.compose.project"
	composeServiceLabel = "com.docker.compose.service"
)

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
}

// ContainerInfo describes one container belonging to the compose project.
type ContainerInfo struct {
	Name    string
	Service string
	State   string
}

// ListProjectContainers returns container information for all containers
// belonging to the specified Docker Compose project.
func ListProjectContainers(
	ctx context.Context,
	client DockerClient,
	project string,
) ([]ContainerInfo, error) {
	labelFilter := filters.NewArgs()
	labelFilter.Add("label", fmt.Sprintf("%s=%s", composeProjectLabel, project))

	containers, err := client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: labelFilter,
	})
	if err != nil {
		return nil, err
	}

	result := make([]ContainerInfo, 0, len(containers))
	for _, ctr := range containers {
		if ctr.Labels == nil || ctr.Labels[composeProjectLabel] != project {
			continue
		}

		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}

		result = append(result, ContainerInfo{
			Name:    name,
			Service: ctr.Labels[composeServiceLabel],
			State:   ctr.State,
		})
	}
	return result, nil
}

// GuardServiceIdle fails when the named service already has a running
// container in the project. Two aggregator runs against the same bucket
// would interleave their output.
func GuardServiceIdle(ctx context.Context, client DockerClient, project, service string) error {
	containers, err := ListProjectContainers(ctx, client, project)
	if err != nil {
		return fmt.Errorf("list %s containers: %w", project, err)
	}
	for _, ctr := range containers {
		if ctr.Service == service && ctr.State == "running" {
			return fmt.Errorf("service %s is already running (container %s)", service, ctr.Name)
		}
	}
	return nil
}
