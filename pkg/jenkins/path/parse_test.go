package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://none:8080"

func TestParseView(t *testing.T) {
	p, err := Parse(baseURL, "/view/myview/")
	require.NoError(t, err)
	assert.Equal(t, View{Name: EncodedName("myview")}, p)
}

func TestParseJob(t *testing.T) {
	p, err := Parse(baseURL, "/job/myjob/")
	require.NoError(t, err)
	assert.Equal(t, Job{Name: EncodedName("myjob")}, p)
}

func TestParseJobWithConfiguration(t *testing.T) {
	p, err := Parse(baseURL, "/job/myjob/config/")
	require.NoError(t, err)
	assert.Equal(t, Job{
		Name:          EncodedName("myjob"),
		Configuration: EncodedName("config"),
	}, p)
}

func TestParseBuild(t *testing.T) {
	p, err := Parse(baseURL, "/job/myjob/1/")
	require.NoError(t, err)
	assert.Equal(t, Build{
		JobName: EncodedName("myjob"),
		Number:  Number(1),
	}, p)
}

func TestParseBuildWithConfiguration(t *testing.T) {
	p, err := Parse(baseURL, "/job/myjob/config/1/")
	require.NoError(t, err)
	assert.Equal(t, Build{
		JobName:       EncodedName("myjob"),
		Number:        Number(1),
		Configuration: EncodedName("config"),
	}, p)
}

// The numeric probe runs first, so a job literally named "42" resolves as
// a build. This follows from the server's URL syntax and is accepted.
func TestParseAmbiguousNumericSegment(t *testing.T) {
	p, err := Parse(baseURL, "/job/foo/42/")
	require.NoError(t, err)
	assert.Equal(t, Build{
		JobName: EncodedName("foo"),
		Number:  Number(42),
	}, p)

	p, err = Parse(baseURL, "/job/foo/bar/")
	require.NoError(t, err)
	assert.Equal(t, Job{
		Name:          EncodedName("foo"),
		Configuration: EncodedName("bar"),
	}, p)
}

func TestParseNumericOverflowFallsBackToConfiguration(t *testing.T) {
	p, err := Parse(baseURL, "/job/foo/99999999999999999999/")
	require.NoError(t, err)
	assert.Equal(t, Job{
		Name:          EncodedName("foo"),
		Configuration: EncodedName("99999999999999999999"),
	}, p)
}

func TestParseFolder(t *testing.T) {
	p, err := Parse(baseURL, "/job/folder1/job/foo/3/")
	require.NoError(t, err)
	assert.Equal(t, InFolder{
		FolderName: EncodedName("folder1"),
		Path: Build{
			JobName: EncodedName("foo"),
			Number:  Number(3),
		},
	}, p)

	assert.Equal(t, "/job/folder1/job/foo/3", p.String())
}

func TestParseFolderWithJob(t *testing.T) {
	p, err := Parse(baseURL, "/job/folder1/job/foo/")
	require.NoError(t, err)
	assert.Equal(t, InFolder{
		FolderName: EncodedName("folder1"),
		Path:       Job{Name: EncodedName("foo")},
	}, p)
}

func TestParseNestedFolders(t *testing.T) {
	p, err := Parse(baseURL, "/job/folder1/job/folder2/job/foo/3/")
	require.NoError(t, err)
	assert.Equal(t, InFolder{
		FolderName: EncodedName("folder1"),
		Path: InFolder{
			FolderName: EncodedName("folder2"),
			Path: Build{
				JobName: EncodedName("foo"),
				Number:  Number(3),
			},
		},
	}, p)
}

func TestParseMavenArtifacts(t *testing.T) {
	p, err := Parse(baseURL, "/job/myjob/5/mavenArtifacts/")
	require.NoError(t, err)
	assert.Equal(t, MavenArtifactRecord{
		JobName: EncodedName("myjob"),
		Number:  Number(5),
	}, p)
}

func TestParseMavenArtifactsWithConfiguration(t *testing.T) {
	p, err := Parse(baseURL, "/job/myjob/cfg/5/mavenArtifacts/")
	require.NoError(t, err)
	assert.Equal(t, MavenArtifactRecord{
		JobName:       EncodedName("myjob"),
		Number:        Number(5),
		Configuration: EncodedName("cfg"),
	}, p)
}

func TestParseMavenArtifactsBadNumber(t *testing.T) {
	_, err := Parse(baseURL, "/job/myjob/abc/mavenArtifacts/")
	require.Error(t, err)

	parseErr := &ParseError{}
	require.ErrorAs(t, err, &parseErr)
}

func TestParseQueueItem(t *testing.T) {
	p, err := Parse(baseURL, "/queue/item/123/")
	require.NoError(t, err)
	assert.Equal(t, QueueItem{ID: 123}, p)
}

func TestParseQueueItemBadID(t *testing.T) {
	_, err := Parse(baseURL, "/queue/item/abc/")
	require.Error(t, err)

	parseErr := &ParseError{}
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "/queue/item/abc/", parseErr.Path)
}

func TestParseUnknownShape(t *testing.T) {
	p, err := Parse(baseURL, "/unknown/path/")
	require.NoError(t, err)
	assert.Equal(t, Raw{Path: "/unknown/path/"}, p)

	// Parse-then-render of an unrecognized path is an identity operation.
	assert.Equal(t, "/unknown/path/", p.String())
}

func TestParseWithoutTrailingSlash(t *testing.T) {
	p, err := Parse(baseURL, "/job/myjob")
	require.NoError(t, err)
	assert.Equal(t, Raw{Path: "/job/myjob"}, p)
}

func TestParseStripsBaseURL(t *testing.T) {
	p, err := Parse(baseURL, baseURL+"/job/myjob/")
	require.NoError(t, err)
	assert.Equal(t, Job{Name: EncodedName("myjob")}, p)
}

func TestParseForeignBaseURLIsKept(t *testing.T) {
	p, err := Parse(baseURL, "http://other:8080/job/myjob/")
	require.NoError(t, err)
	assert.Equal(t, Raw{Path: "http://other:8080/job/myjob/"}, p)
}

// The server terminates the url fields it embeds in payloads with a
// slash; rendering drops it. Round-tripping therefore re-appends it.
func TestParseRenderRoundTrip(t *testing.T) {
	paths := []Path{
		View{Name: EncodedName("myview")},
		Job{Name: EncodedName("myjob")},
		Job{Name: EncodedName("myjob"), Configuration: EncodedName("cfg")},
		Build{JobName: EncodedName("myjob"), Number: Number(12)},
		Build{JobName: EncodedName("myjob"), Number: Number(12), Configuration: EncodedName("cfg")},
		MavenArtifactRecord{JobName: EncodedName("myjob"), Number: Number(12)},
		QueueItem{ID: 42},
		InFolder{
			FolderName: EncodedName("dir"),
			Path:       Build{JobName: EncodedName("myjob"), Number: Number(3)},
		},
	}

	for _, expected := range paths {
		parsed, err := Parse(baseURL, expected.String()+"/")
		require.NoError(t, err)
		assert.Equal(t, expected, parsed)
	}
}

func TestParseIdempotence(t *testing.T) {
	inputs := []string{
		"/job/myjob/",
		"/job/myjob/3/",
		"/job/dir/job/myjob/",
		"/view/myview/",
		"/queue/item/7/",
	}

	for _, input := range inputs {
		once, err := Parse(baseURL, input)
		require.NoError(t, err)

		again, err := Parse(baseURL, once.String()+"/")
		require.NoError(t, err)
		assert.Equal(t, once, again)
	}
}
