// Package path models the locations of resources on a Jenkins server and
// maps them to and from the URL syntax the server expects.
package path

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Name is the name of an object as it appears in one URL segment. The
// encoding state is fixed at construction: names built with RawName are
// percent-encoded on render, names built with EncodedName were taken from
// a URL and are inserted verbatim.
type Name struct {
	value   string
	encoded bool
}

// RawName wraps a caller-supplied name that still needs percent-encoding.
func RawName(name string) Name {
	return Name{value: name}
}

// EncodedName wraps a name extracted from a URL that must not be encoded
// a second time.
func EncodedName(name string) Name {
	return Name{value: name, encoded: true}
}

// IsZero reports whether the name is absent.
func (n Name) IsZero() bool {
	return n.value == ""
}

func (n Name) String() string {
	if n.encoded {
		return n.value
	}

	return url.PathEscape(n.value)
}

// BuildNumber identifies a build by literal number or by one of the
// symbolic aliases the server resolves, like lastBuild. Aliases the
// library does not know about are preserved verbatim.
type BuildNumber struct {
	alias  string
	number uint32
}

// Aliases to builds resolved by the server.
var (
	LastBuild             = BuildNumber{alias: "lastBuild"}
	LastSuccessfulBuild   = BuildNumber{alias: "lastSuccessfulBuild"}
	LastStableBuild       = BuildNumber{alias: "lastStableBuild"}
	LastCompletedBuild    = BuildNumber{alias: "lastCompletedBuild"}
	LastFailedBuild       = BuildNumber{alias: "lastFailedBuild"}
	LastUnsuccessfulBuild = BuildNumber{alias: "lastUnsuccessfulBuild"}
)

// Number returns the build reference for a literal build number.
func Number(n uint32) BuildNumber {
	return BuildNumber{number: n}
}

// Alias returns the build reference for a symbolic alias. Unrecognized
// aliases are kept as-is so new server-side aliases keep working.
func Alias(name string) BuildNumber {
	return BuildNumber{alias: name}
}

func (b BuildNumber) String() string {
	if b.alias != "" {
		return b.alias
	}

	return strconv.FormatUint(uint64(b.number), 10)
}

// Path locates a resource on the Jenkins server. It is a closed set of
// variants, each rendering to the exact URL path the server expects via
// String. Rendered paths carry no trailing slash, except Home which is
// empty.
type Path interface {
	fmt.Stringer
	isPath()
}

// Home is the server root.
type Home struct{}

// View addresses a view by name.
type View struct {
	Name Name
}

// AddJobToView adds a job to a view, query-parameter style.
type AddJobToView struct {
	JobName  Name
	ViewName Name
}

// RemoveJobFromView removes a job from a view, query-parameter style.
type RemoveJobFromView struct {
	JobName  Name
	ViewName Name
}

// Job addresses a job, or one of its matrix configurations when
// Configuration is set.
type Job struct {
	Name          Name
	Configuration Name
}

// BuildJob triggers a build of a job.
type BuildJob struct {
	Name Name
}

// BuildJobWithParameters triggers a parameterized build of a job.
type BuildJobWithParameters struct {
	Name Name
}

// PollSCMJob polls the SCM of a job.
type PollSCMJob struct {
	Name Name
}

// JobEnable enables a job.
type JobEnable struct {
	Name Name
}

// JobDisable disables a job.
type JobDisable struct {
	Name Name
}

// Build addresses one build of a job. The configuration segment sits
// between the job name and the build number.
type Build struct {
	JobName       Name
	Number        BuildNumber
	Configuration Name
}

// ConsoleText addresses the console log of a build.
type ConsoleText struct {
	JobName       Name
	Number        BuildNumber
	Configuration Name
	FolderName    Name
}

// ConfigXML addresses the configuration file of a job.
type ConfigXML struct {
	JobName    Name
	FolderName Name
}

// Queue is the build queue.
type Queue struct{}

// QueueItem addresses one item in the build queue. The server hands out
// the id as a signed integer.
type QueueItem struct {
	ID int64
}

// MavenArtifactRecord addresses the maven artifacts of a build.
type MavenArtifactRecord struct {
	JobName       Name
	Number        BuildNumber
	Configuration Name
}

// InFolder nests another path under a folder. Nesting can repeat for
// arbitrarily deep folder hierarchies. Only resources addressable beneath
// a /job/<folder>/ prefix may be wrapped; use Nest to get that checked.
type InFolder struct {
	FolderName Name
	Path       Path
}

// Computers is the list of nodes attached to the server.
type Computers struct{}

// Computer addresses one node by name.
type Computer struct {
	Name Name
}

// Raw carries a URL path the parser could not classify, unchanged, so
// parse-then-render of an unrecognized path is an identity operation.
type Raw struct {
	Path string
}

// CrumbIssuer is the CSRF token endpoint.
type CrumbIssuer struct{}

func (Home) isPath() {}
func (View) isPath() {}
func (AddJobToView) isPath() {}
func (RemoveJobFromView) isPath() {}
func (Job) isPath() {}
func (BuildJob) isPath() {}
func (BuildJobWithParameters) isPath() {}
func (PollSCMJob) isPath() {}
func (JobEnable) isPath() {}
func (JobDisable) isPath() {}
func (Build) isPath() {}
func (ConsoleText) isPath() {}
func (ConfigXML) isPath() {}
func (Queue) isPath() {}
func (QueueItem) isPath() {}
func (MavenArtifactRecord) isPath() {}
func (InFolder) isPath() {}
func (Computers) isPath() {}
func (Computer) isPath() {}
func (Raw) isPath() {}
func (CrumbIssuer) isPath() {}

// Nest wraps a path in a folder, rejecting resources that cannot live
// beneath a /job/<folder>/ prefix.
func Nest(folder Name, p Path) (InFolder, error) {
	switch p.(type) {
	case Job, Build, ConsoleText, ConfigXML, MavenArtifactRecord,
		BuildJob, BuildJobWithParameters, PollSCMJob, JobEnable, JobDisable,
		InFolder:
		return InFolder{FolderName: folder, Path: p}, nil
	default:
		return InFolder{}, fmt.Errorf("cannot nest %T in folder %s", p, folder)
	}
}

func (Home) String() string {
	return ""
}

func (p View) String() string {
	return fmt.Sprintf("/view/%s", p.Name)
}

func (p AddJobToView) String() string {
	return fmt.Sprintf("/view/%s/addJobToView?name=%s", p.ViewName, p.JobName)
}

func (p RemoveJobFromView) String() string {
	return fmt.Sprintf("/view/%s/removeJobFromView?name=%s", p.ViewName, p.JobName)
}

func (p Job) String() string {
	if p.Configuration.IsZero() {
		return fmt.Sprintf("/job/%s", p.Name)
	}

	return fmt.Sprintf("/job/%s/%s", p.Name, p.Configuration)
}

func (p BuildJob) String() string {
	return fmt.Sprintf("/job/%s/build", p.Name)
}

func (p BuildJobWithParameters) String() string {
	return fmt.Sprintf("/job/%s/buildWithParameters", p.Name)
}

func (p PollSCMJob) String() string {
	return fmt.Sprintf("/job/%s/polling", p.Name)
}

func (p JobEnable) String() string {
	return fmt.Sprintf("/job/%s/enable", p.Name)
}

func (p JobDisable) String() string {
	return fmt.Sprintf("/job/%s/disable", p.Name)
}

func (p Build) String() string {
	if p.Configuration.IsZero() {
		return fmt.Sprintf("/job/%s/%s", p.JobName, p.Number)
	}

	return fmt.Sprintf("/job/%s/%s/%s", p.JobName, p.Configuration, p.Number)
}

func (p ConsoleText) String() string {
	var b strings.Builder

	if !p.FolderName.IsZero() {
		fmt.Fprintf(&b, "/job/%s", p.FolderName)
	}

	fmt.Fprintf(&b, "/job/%s", p.JobName)

	if !p.Configuration.IsZero() {
		fmt.Fprintf(&b, "/%s", p.Configuration)
	}

	fmt.Fprintf(&b, "/%s/consoleText", p.Number)

	return b.String()
}

func (p ConfigXML) String() string {
	if p.FolderName.IsZero() {
		return fmt.Sprintf("/job/%s/config.xml", p.JobName)
	}

	return fmt.Sprintf("/job/%s/job/%s/config.xml", p.FolderName, p.JobName)
}

func (Queue) String() string {
	return "/queue"
}

func (p QueueItem) String() string {
	return fmt.Sprintf("/queue/item/%d", p.ID)
}

func (p MavenArtifactRecord) String() string {
	if p.Configuration.IsZero() {
		return fmt.Sprintf("/job/%s/%s/mavenArtifacts", p.JobName, p.Number)
	}

	return fmt.Sprintf("/job/%s/%s/%s/mavenArtifacts", p.JobName, p.Configuration, p.Number)
}

func (p InFolder) String() string {
	return fmt.Sprintf("/job/%s%s", p.FolderName, p.Path)
}

func (Computers) String() string {
	return "/computer/api/json"
}

func (p Computer) String() string {
	return fmt.Sprintf("/computer/%s/api/json", p.Name)
}

func (p Raw) String() string {
	return p.Path
}

func (CrumbIssuer) String() string {
	return "/crumbIssuer"
}
