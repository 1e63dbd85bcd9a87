// Package gitops is the path-based API a front end uses for hooks and
// commit details.
//
// Every call opens the repository at repoPath (any directory inside the
// work-tree), so calls share no state and are safe to make concurrently.
//
//	res, err := gitops.HooksCommitMsg(repoPath, &msg)
//	if err != nil {
//	    return err
//	}
//	if !res.Ok() {
//	    showRejection(res.Output)
//	}
//
//	details, err := gitops.GetCommitDetails(repoPath, "HEAD")
package gitops
