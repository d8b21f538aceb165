package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
)

// EnsureNetwork creates a bridge network with the given name if it does
// not already exist. An existing network with the name is success, not an
// error, so repeated create runs stay idempotent.
func (c *Client) EnsureNetwork(ctx context.Context, name string) error {
	// The name filter matches substrings, so verify the exact name on the
	// results.
	networks, err := c.inner.NetworkList(ctx, network.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}
	for _, n := range networks {
		if n.Name == name {
			return nil
		}
	}

	_, err = c.inner.NetworkCreate(ctx, name, network.CreateOptions{
		Driver: "bridge",
	})
	if err != nil {
		return fmt.Errorf("failed to create network %q: %w", name, err)
	}
	return nil
}

// EnsureVolume creates a named volume if it does not already exist.
// VolumeCreate is itself idempotent for local volumes, but the list check
// keeps the behavior explicit and avoids touching volumes created with
// different drivers.
func (c *Client) EnsureVolume(ctx context.Context, name string) error {
	resp, err := c.inner.VolumeList(ctx, volume.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return fmt.Errorf("failed to list volumes: %w", err)
	}
	for _, v := range resp.Volumes {
		if v != nil && v.Name == name {
			return nil
		}
	}

	_, err = c.inner.VolumeCreate(ctx, volume.CreateOptions{Name: name})
	if err != nil {
		return fmt.Errorf("failed to create volume %q: %w", name, err)
	}
	return nil
}

// RemoveNetwork deletes a network by name. A network that does not exist
// is treated as already removed.
func (c *Client) RemoveNetwork(ctx context.Context, name string) error {
	networks, err := c.inner.NetworkList(ctx, network.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}
	for _, n := range networks {
		if n.Name == name {
			if err := c.inner.NetworkRemove(ctx, n.ID); err != nil {
				return fmt.Errorf("failed to remove network %q: %w", name, err)
			}
			return nil
		}
	}
	return nil
}

// RemoveVolume deletes a named volume. A volume that does not exist is
// treated as already removed.
func (c *Client) RemoveVolume(ctx context.Context, name string) error {
	resp, err := c.inner.VolumeList(ctx, volume.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return fmt.Errorf("failed to list volumes: %w", err)
	}
	for _, v := range resp.Volumes {
		if v != nil && v.Name == name {
			if err := c.inner.VolumeRemove(ctx, name, false); err != nil {
				return fmt.Errorf("failed to remove volume %q: %w", name, err)
			}
			return nil
		}
	}
	return nil
}
