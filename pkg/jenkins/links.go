package jenkins

import (
	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// innermost unwraps folder nesting and returns the path at the center.
func innermost(p path.Path) path.Path {
	for {
		folder, ok := p.(path.InFolder)

		if !ok {
			return p
		}

		p = folder.Path
	}
}

// rewrap rebuilds the folder nesting of p around a replacement inner
// path, so an operation derived from a link keeps addressing the same
// folder.
func rewrap(p, inner path.Path) path.Path {
	folder, ok := p.(path.InFolder)

	if !ok {
		return inner
	}

	return path.InFolder{
		FolderName: folder.FolderName,
		Path:       rewrap(folder.Path, inner),
	}
}
