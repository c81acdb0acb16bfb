package jules

import "context"

// FindSource scans the connected sources for the first entry whose owner and
// repo both match exactly. Matching is case-sensitive and first match wins;
// an absent repository is an expected state reported as found=false, not an
// error.
func (c *Client) FindSource(ctx context.Context, owner, repo string) (string, bool, error) {
	sources, err := c.ListSources(ctx)
	if err != nil {
		return "", false, err
	}

	for _, source := range sources {
		if source.GitHubRepo.Owner == owner && source.GitHubRepo.Repo == repo {
			c.logger.Info("source found", "source", source.Name, "owner", owner, "repo", repo)
			return source.Name, true, nil
		}
	}

	c.logger.Info("repository not connected", "owner", owner, "repo", repo)
	return "", false, nil
}
