package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# blogd configuration
site:
  # Public base URL used for feed links.
  base_url: https://your-domain.com
  author_name: Your Name
  author_email: you@your-domain.com

content:
  # One subdirectory per locale, one Markdown file per post.
  dir: ./content/posts
  default_locale: hu
  locales:
    - code: hu
      language: hu-HU
      feed_title: My Blog
      feed_description: Személyes blog technológiáról, életről és projektekről
    - code: en
      language: en-US
      feed_title: My Blog - English
      feed_description: Personal blog about technology, life, and projects

server:
  addr: ":8080"

views:
  path: ./data/views.db

logging:
  level: info
  format: text
`

// Init writes an example configuration file to configPath.
// It refuses to overwrite an existing file unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	return os.WriteFile(configPath, []byte(exampleConfig), 0644)
}
