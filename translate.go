package pbtool

import (
	"errors"
	"path/filepath"
	"runtime"

	"git.fractalqb.de/fractalqb/pbtool/mkfs"
	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
)

// TranslationDir holds the .ts files of the locales.
const TranslationDir = "i18n"

// Translate runs the translator for every locale of the project on
// i18n/<locale>.ts. It returns the number of translated locales. A missing
// translator or the lack of locales is reported and nothing is done.
func (bd *Builder) Translate(tr *pbkore.Trace) (n int, err error) {
	tr = tr.Step("translate")
	defer tr.Done()
	tool, err := bd.FindTool(tr, pbcfg.ToolTranslator)
	switch {
	case errors.Is(err, pbkore.ErrToolNotFound):
		tr.Warn("unable to find the lrelease command, make sure it is installed and in your path")
		if runtime.GOOS == "windows" {
			tr.Warn("lrelease comes with the qt4-devel package in the Libs section of the OSGeo4W Advanced Install")
		}
		return 0, nil
	case err != nil:
		return 0, err
	}
	if err := bd.Project.Require(pbcfg.KeyLocales); err != nil {
		tr.Warn(err.Error())
		return 0, nil
	}
	if len(bd.Project.Files.Locales) == 0 {
		tr.Warn("no translations are specified")
		return 0, nil
	}
	for _, locale := range bd.Project.Files.Locales {
		ts := filepath.Join(TranslationDir, mkfs.File(locale).WithExt(".ts").Path())
		if err := toolCommand(tool, bd.Dir, ts).Run(tr, bd.env(tr)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
