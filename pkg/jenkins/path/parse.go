package path

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a URL whose structural shape is unambiguous but whose
// numeric segment cannot be parsed, like /queue/item/abc/.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid path %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse maps a URL taken from a server response back to a structured Path.
// The base URL of the server is stripped when the URL starts with it,
// otherwise stripping is a no-op. URLs that match no known shape come back
// as Raw, preserving the input for pass-through use.
//
// The grammar is not context-free from segment count alone: in
// /job/<A>/<B>/ the second segment is a build number when it parses as an
// unsigned integer and a configuration name otherwise. The numeric probe
// runs first; a job literally named "42" therefore resolves as a build.
// That ambiguity comes from the server's URL syntax and is accepted here.
func Parse(base, rawURL string) (Path, error) {
	p := rawURL
	if strings.HasPrefix(rawURL, base) {
		p = rawURL[len(base):]
	}

	// Every recognized shape ends in a slash; the URLs the server embeds
	// in payloads always do.
	if !strings.HasSuffix(p, "/") {
		return Raw{Path: p}, nil
	}

	var slashes []int
	for i, r := range p {
		if r == '/' {
			slashes = append(slashes, i)
		}
	}

	if len(slashes) < 3 || slashes[0] != 0 {
		return Raw{Path: p}, nil
	}

	head := p[:slashes[1]]

	switch {
	case head == "/view" && len(slashes) == 3:
		return View{Name: EncodedName(p[6 : len(p)-1])}, nil

	case head == "/job" && len(slashes) == 3:
		return Job{Name: EncodedName(p[5 : len(p)-1])}, nil

	case head == "/job" && len(slashes) == 4:
		last := p[slashes[2]+1 : len(p)-1]
		if number, err := strconv.ParseUint(last, 10, 32); err == nil {
			return Build{
				JobName: EncodedName(p[5:slashes[2]]),
				Number:  Number(uint32(number)),
			}, nil
		}

		return Job{
			Name:          EncodedName(p[5:slashes[2]]),
			Configuration: EncodedName(last),
		}, nil

	case head == "/job" && len(slashes) == 5:
		switch {
		case p[slashes[3]:slashes[4]] == "/mavenArtifacts":
			number, err := strconv.ParseUint(p[slashes[2]+1:slashes[3]], 10, 32)
			if err != nil {
				return nil, &ParseError{Path: p, Err: err}
			}

			return MavenArtifactRecord{
				JobName: EncodedName(p[5:slashes[2]]),
				Number:  Number(uint32(number)),
			}, nil

		case p[slashes[2]:slashes[3]] == "/job":
			nested, err := Parse(base, p[slashes[2]:])
			if err != nil {
				return nil, err
			}

			return InFolder{
				FolderName: EncodedName(p[5:slashes[2]]),
				Path:       nested,
			}, nil

		default:
			number, err := strconv.ParseUint(p[slashes[3]+1:len(p)-1], 10, 32)
			if err != nil {
				return nil, &ParseError{Path: p, Err: err}
			}

			return Build{
				JobName:       EncodedName(p[5:slashes[2]]),
				Number:        Number(uint32(number)),
				Configuration: EncodedName(p[slashes[2]+1 : slashes[3]]),
			}, nil
		}

	case head == "/job" && len(slashes) >= 6:
		if p[slashes[2]:slashes[3]] == "/job" {
			nested, err := Parse(base, p[slashes[2]:])
			if err != nil {
				return nil, err
			}

			return InFolder{
				FolderName: EncodedName(p[5:slashes[2]]),
				Path:       nested,
			}, nil
		}

		if len(slashes) == 6 && p[slashes[4]:slashes[5]] == "/mavenArtifacts" {
			number, err := strconv.ParseUint(p[slashes[3]+1:slashes[4]], 10, 32)
			if err != nil {
				return nil, &ParseError{Path: p, Err: err}
			}

			return MavenArtifactRecord{
				JobName:       EncodedName(p[5:slashes[2]]),
				Number:        Number(uint32(number)),
				Configuration: EncodedName(p[slashes[2]+1 : slashes[3]]),
			}, nil
		}

		return Raw{Path: p}, nil

	case head == "/queue" && len(slashes) == 4:
		id, err := strconv.ParseInt(p[slashes[2]+1:len(p)-1], 10, 64)
		if err != nil {
			return nil, &ParseError{Path: p, Err: err}
		}

		return QueueItem{ID: id}, nil
	}

	return Raw{Path: p}, nil
}
