package maven

import (
	"encoding/xml"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Pom holds the parts of a pom.xml needed to locate and name the built jar
type Pom struct {
	XMLName    xml.Name `xml:"project"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Version    string   `xml:"version"`
	Name       string   `xml:"name"`
	Packaging  string   `xml:"packaging"`
	Parent     struct {
		GroupID    string `xml:"groupId"`
		ArtifactID string `xml:"artifactId"`
		Version    string `xml:"version"`
	} `xml:"parent"`
	Build struct {
		FinalName string `xml:"finalName"`
	} `xml:"build"`
}

var placeholderRegex = regexp.MustCompile(`\$\{(project\.)?(artifactId|version|name|groupId)\}`)

// ReadPom reads and parses the pom.xml in projectDir
func ReadPom(projectDir string) (pom Pom, err error) {

	data, err := ioutil.ReadFile(filepath.Join(projectDir, "pom.xml"))
	if err != nil {
		return pom, fmt.Errorf("reading pom.xml in %v failed: %w", projectDir, err)
	}

	return ParsePom(data)
}

// ParsePom parses pom.xml content; version and groupId are inherited from the parent when missing
func ParsePom(data []byte) (pom Pom, err error) {

	if err = xml.Unmarshal(data, &pom); err != nil {
		return pom, fmt.Errorf("parsing pom.xml failed: %w", err)
	}

	pom.Name = strings.TrimSpace(pom.Name)
	pom.ArtifactID = strings.TrimSpace(pom.ArtifactID)
	pom.Version = strings.TrimSpace(pom.Version)
	pom.Build.FinalName = strings.TrimSpace(pom.Build.FinalName)

	if pom.Version == "" {
		pom.Version = strings.TrimSpace(pom.Parent.Version)
	}
	if pom.GroupID == "" {
		pom.GroupID = strings.TrimSpace(pom.Parent.GroupID)
	}

	// a name can't refer to itself, the artifactId stands in for it
	pom.Name = pom.resolve(pom.Name, pom.ArtifactID)
	pom.Build.FinalName = pom.resolve(pom.Build.FinalName, pom.Name)

	if pom.ArtifactID == "" {
		return pom, fmt.Errorf("pom.xml has no artifactId")
	}

	return pom, nil
}

func (p Pom) resolve(value, name string) string {
	return placeholderRegex.ReplaceAllStringFunc(value, func(match string) string {
		switch placeholderRegex.FindStringSubmatch(match)[2] {
		case "artifactId":
			return p.ArtifactID
		case "version":
			return p.Version
		case "groupId":
			return p.GroupID
		case "name":
			return name
		}
		return match
	})
}

// ArtifactName returns the file name the jar is published under, "{name} v{version}.jar"
func ArtifactName(pom Pom) string {
	name := pom.Name
	if name == "" {
		name = pom.ArtifactID
	}
	if pom.Version == "" {
		return fmt.Sprintf("%v.jar", name)
	}
	return fmt.Sprintf("%v v%v.jar", name, pom.Version)
}

// BuiltJarPath locates the jar maven produced in the target directory of projectDir
func BuiltJarPath(projectDir string, pom Pom) (string, error) {

	targetDir := filepath.Join(projectDir, "target")

	candidates := []string{}
	if pom.Build.FinalName != "" {
		candidates = append(candidates, pom.Build.FinalName+".jar")
	}
	if pom.Version != "" {
		candidates = append(candidates, fmt.Sprintf("%v-%v.jar", pom.ArtifactID, pom.Version))
	}
	candidates = append(candidates, pom.ArtifactID+".jar")

	for _, c := range candidates {
		path := filepath.Join(targetDir, c)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	files, err := ioutil.ReadDir(targetDir)
	if err != nil {
		return "", fmt.Errorf("reading target directory %v failed: %w", targetDir, err)
	}

	jars := []string{}
	for _, f := range files {
		if f.IsDir() || !isPublishableJar(f.Name()) {
			continue
		}
		jars = append(jars, filepath.Join(targetDir, f.Name()))
	}

	if len(jars) != 1 {
		return "", fmt.Errorf("expected a single jar in %v, found %v", targetDir, len(jars))
	}

	return jars[0], nil
}

func isPublishableJar(name string) bool {
	return strings.HasSuffix(name, ".jar") &&
		!strings.HasPrefix(name, "original-") &&
		!strings.HasSuffix(name, "-sources.jar") &&
		!strings.HasSuffix(name, "-javadoc.jar") &&
		!strings.HasSuffix(name, "-tests.jar")
}
