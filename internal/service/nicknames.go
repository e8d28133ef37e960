package service

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed nicknames.yaml
var nicknamesYAML []byte

type nicknameConfig struct {
	Clusters [][]string `yaml:"clusters"`
}

// nicknameIndex maps a normalized first name to every other name in its
// cluster. Built once from the embedded cluster list so the two directions of
// an equivalence cannot drift apart.
var nicknameIndex = mustBuildNicknameIndex(nicknamesYAML)

func mustBuildNicknameIndex(raw []byte) map[string][]string {
	var cfg nicknameConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic(fmt.Sprintf("nicknames: invalid embedded cluster table: %v", err))
	}

	index := make(map[string][]string)
	for _, cluster := range cfg.Clusters {
		for _, name := range cluster {
			key := strings.ToLower(strings.TrimSpace(name))
			seen := make(map[string]bool, len(cluster))
			for _, existing := range index[key] {
				seen[existing] = true
			}
			for _, other := range cluster {
				variant := strings.ToLower(strings.TrimSpace(other))
				if variant == key || seen[variant] {
					continue
				}
				index[key] = append(index[key], variant)
				seen[variant] = true
			}
		}
	}
	return index
}

// NicknameVariants returns every configured variant of the given first name,
// excluding the name itself. Names without a cluster return nil.
func NicknameVariants(firstName string) []string {
	return nicknameIndex[strings.ToLower(strings.TrimSpace(firstName))]
}
