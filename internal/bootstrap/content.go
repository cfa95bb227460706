package bootstrap

import "github.com/CampusAssist-QA/campus-qa-backend/internal/qa/content"

func LoadContent(pagesPath string) (*content.Store, error) {
	return content.Open(pagesPath)
}
