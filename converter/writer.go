package converter

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
)

const sectionSeparator = "\n\n"

// Write renders every section into path. The first section truncates the file,
// each following one is appended after a blank line. A failed section is
// reported in the returned error and the remaining sections are still written.
func (c *Converter) Write(path string, result *Result) error {
	var errs *multierror.Error

	for i, section := range c.variant.Sections {
		data := c.Render(result, section)

		var err error
		if i == 0 {
			err = writeFile(path, data)
		} else {
			err = appendFile(path, sectionSeparator+data)
		}

		if err != nil {
			c.logger.Error("failed to write section", "category", section.Category, "path", path, "error", err)
			errs = multierror.Append(errs, fmt.Errorf("write %s section: %w", section.Category, err))
			continue
		}
		c.logger.Info("file written", "category", section.Category, "records", result.Count(section.Category))
	}

	return errs.ErrorOrNil()
}

func writeFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0o644)
}

func appendFile(path, data string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = f.WriteString(data)
	return err
}
