package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameEncoding(t *testing.T) {
	assert.Equal(t, "my%20job", RawName("my job").String())
	assert.Equal(t, "my%20job", EncodedName("my%20job").String())
	assert.Equal(t, "plain", RawName("plain").String())
	assert.True(t, Name{}.IsZero())
	assert.False(t, RawName("x").IsZero())
}

func TestBuildNumberRendering(t *testing.T) {
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "lastBuild", LastBuild.String())
	assert.Equal(t, "lastSuccessfulBuild", LastSuccessfulBuild.String())
	assert.Equal(t, "lastStableBuild", LastStableBuild.String())
	assert.Equal(t, "lastCompletedBuild", LastCompletedBuild.String())
	assert.Equal(t, "lastFailedBuild", LastFailedBuild.String())
	assert.Equal(t, "lastUnsuccessfulBuild", LastUnsuccessfulBuild.String())
	assert.Equal(t, "someNewAlias", Alias("someNewAlias").String())
}

func TestRenderPaths(t *testing.T) {
	cases := []struct {
		name     string
		path     Path
		expected string
	}{
		{"home", Home{}, ""},
		{"view", View{Name: RawName("myview")}, "/view/myview"},
		{
			"add job to view",
			AddJobToView{JobName: RawName("j"), ViewName: RawName("v")},
			"/view/v/addJobToView?name=j",
		},
		{
			"remove job from view",
			RemoveJobFromView{JobName: RawName("j"), ViewName: RawName("v")},
			"/view/v/removeJobFromView?name=j",
		},
		{"job", Job{Name: RawName("myjob")}, "/job/myjob"},
		{
			"job with configuration",
			Job{Name: RawName("myjob"), Configuration: RawName("cfg")},
			"/job/myjob/cfg",
		},
		{"build job", BuildJob{Name: RawName("myjob")}, "/job/myjob/build"},
		{
			"build job with parameters",
			BuildJobWithParameters{Name: RawName("myjob")},
			"/job/myjob/buildWithParameters",
		},
		{"poll scm", PollSCMJob{Name: RawName("myjob")}, "/job/myjob/polling"},
		{"enable", JobEnable{Name: RawName("myjob")}, "/job/myjob/enable"},
		{"disable", JobDisable{Name: RawName("myjob")}, "/job/myjob/disable"},
		{
			"build",
			Build{JobName: RawName("myjob"), Number: Number(1)},
			"/job/myjob/1",
		},
		{
			"build with alias",
			Build{JobName: RawName("myjob"), Number: LastBuild},
			"/job/myjob/lastBuild",
		},
		{
			"build with configuration",
			Build{JobName: RawName("myjob"), Number: Number(1), Configuration: RawName("cfg")},
			"/job/myjob/cfg/1",
		},
		{
			"console text",
			ConsoleText{JobName: RawName("myjob"), Number: Number(3)},
			"/job/myjob/3/consoleText",
		},
		{
			"console text with configuration",
			ConsoleText{JobName: RawName("myjob"), Number: Number(3), Configuration: RawName("cfg")},
			"/job/myjob/cfg/3/consoleText",
		},
		{
			"console text in folder",
			ConsoleText{JobName: RawName("myjob"), Number: Number(3), FolderName: RawName("dir")},
			"/job/dir/job/myjob/3/consoleText",
		},
		{
			"console text in folder with configuration",
			ConsoleText{
				JobName:       RawName("myjob"),
				Number:        Number(3),
				Configuration: RawName("cfg"),
				FolderName:    RawName("dir"),
			},
			"/job/dir/job/myjob/cfg/3/consoleText",
		},
		{
			"config xml",
			ConfigXML{JobName: RawName("myjob")},
			"/job/myjob/config.xml",
		},
		{
			"config xml in folder",
			ConfigXML{JobName: RawName("myjob"), FolderName: RawName("dir")},
			"/job/dir/job/myjob/config.xml",
		},
		{"queue", Queue{}, "/queue"},
		{"queue item", QueueItem{ID: 123}, "/queue/item/123"},
		{
			"maven artifacts",
			MavenArtifactRecord{JobName: RawName("myjob"), Number: Number(5)},
			"/job/myjob/5/mavenArtifacts",
		},
		{
			"maven artifacts with configuration",
			MavenArtifactRecord{JobName: RawName("myjob"), Number: Number(5), Configuration: RawName("cfg")},
			"/job/myjob/cfg/5/mavenArtifacts",
		},
		{
			"folder",
			InFolder{FolderName: RawName("dir"), Path: Job{Name: RawName("myjob")}},
			"/job/dir/job/myjob",
		},
		{
			"nested folders",
			InFolder{
				FolderName: RawName("dir1"),
				Path: InFolder{
					FolderName: RawName("dir2"),
					Path:       Build{JobName: RawName("myjob"), Number: Number(3)},
				},
			},
			"/job/dir1/job/dir2/job/myjob/3",
		},
		{"computers", Computers{}, "/computer/api/json"},
		{"computer", Computer{Name: RawName("agent-1")}, "/computer/agent-1/api/json"},
		{"raw", Raw{Path: "/some/random/url"}, "/some/random/url"},
		{"crumb issuer", CrumbIssuer{}, "/crumbIssuer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.path.String())
		})
	}
}

func TestRenderEscapesRawNames(t *testing.T) {
	p := Build{JobName: RawName("my job"), Number: Number(1)}
	assert.Equal(t, "/job/my%20job/1", p.String())
}

func TestNest(t *testing.T) {
	nested, err := Nest(RawName("dir"), Job{Name: RawName("myjob")})
	require.NoError(t, err)
	assert.Equal(t, "/job/dir/job/myjob", nested.String())

	_, err = Nest(RawName("dir"), Queue{})
	require.Error(t, err)

	_, err = Nest(RawName("dir"), Home{})
	require.Error(t, err)

	_, err = Nest(RawName("dir"), Computers{})
	require.Error(t, err)
}
