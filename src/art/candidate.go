package art

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ironsmile/artrepo/src/catalog"
)

// ImageType is the category of an artwork image.
type ImageType int

// All image types in the order in which their candidates are produced.
const (
	Backdrop ImageType = iota
	Primary
	Thumb
	Logo
)

var imageTypeNames = []string{
	Backdrop: "backdrop",
	Primary:  "primary",
	Thumb:    "thumb",
	Logo:     "logo",
}

func (t ImageType) String() string {
	if t < 0 || int(t) >= len(imageTypeNames) {
		return fmt.Sprintf("ImageType(%d)", int(t))
	}
	return imageTypeNames[t]
}

// MarshalJSON encodes the image type as its name.
func (t ImageType) MarshalJSON() ([]byte, error) {
	if t < 0 || int(t) >= len(imageTypeNames) {
		return nil, fmt.Errorf("unknown image type %d", int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an image type from its name.
func (t *ImageType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	for i, typeName := range imageTypeNames {
		if strings.EqualFold(typeName, name) {
			*t = ImageType(i)
			return nil
		}
	}

	return fmt.Errorf("unknown image type %q", name)
}

// Candidate is a possible artwork image for a media item. Its URL was never
// checked for reachability.
type Candidate struct {
	Type ImageType `json:"type"`
	URL  string    `json:"url"`
}

// BuildCandidates returns a candidate for every image of `entry` which is found
// in the repository at `repoURL` under the category `categoryKey`. Candidates
// are ordered by image type and then by the order in which the repository
// lists the image ids.
func BuildCandidates(repoURL, categoryKey string, entry *catalog.Entry) []Candidate {
	if entry == nil || entry.Images.Len() == 0 {
		return []Candidate{}
	}

	base := strings.TrimSuffix(repoURL, "/")
	candidates := make([]Candidate, 0, entry.Images.Len())

	add := func(imgType ImageType, ids []string) {
		for _, id := range ids {
			candidates = append(candidates, Candidate{
				Type: imgType,
				URL: fmt.Sprintf("%s/%s/%s/%s.%s",
					base, categoryKey, entry.MachineName, imgType, id),
			})
		}
	}

	add(Backdrop, entry.Images.Backdrop)
	add(Primary, entry.Images.Primary)
	add(Thumb, entry.Images.Thumb)
	add(Logo, entry.Images.Logo)

	return candidates
}

// catalogURL returns the address of the catalog for `categoryKey` in the
// repository at `repoURL`.
func catalogURL(repoURL, categoryKey string) string {
	return fmt.Sprintf("%s/%s.json", strings.TrimSuffix(repoURL, "/"), categoryKey)
}
