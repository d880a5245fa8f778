package pbcfg

type Key struct {
	Section, Option string
}

func (k Key) String() string { return k.Section + "." + k.Option }

const (
	SectionPlugin = "plugin"
	SectionFiles  = "files"
	SectionHelp   = "help"
	SectionTools  = "tools"
)

var (
	KeyName        = Key{SectionPlugin, "name"}
	KeyPythonFiles = Key{SectionFiles, "python_files"}
	KeyMainDialog  = Key{SectionFiles, "main_dialog"}
	KeyCompiledUI  = Key{SectionFiles, "compiled_ui_files"}
	KeyResources   = Key{SectionFiles, "resource_files"}
	KeyExtras      = Key{SectionFiles, "extras"}
	KeyExtraDirs   = Key{SectionFiles, "extra_dirs"}
	KeyLocales     = Key{SectionFiles, "locales"}
	KeyHelpDir     = Key{SectionHelp, "dir"}
	KeyHelpTarget  = Key{SectionHelp, "target"}
)

// Mandatory are the keys a valid configuration must have.
var Mandatory = []Key{
	KeyName,
	KeyPythonFiles,
	KeyMainDialog,
	KeyResources,
	KeyExtras,
	KeyHelpDir,
	KeyHelpTarget,
}

// Options of the tools section. Each overrides the command line of an
// external tool.
const (
	ToolUICompiler       = "ui_compiler"
	ToolResourceCompiler = "resource_compiler"
	ToolTranslator       = "translator"
	ToolDocBuilder       = "doc_builder"
	ToolArchiver         = "archiver"
)

var ToolOptions = []string{
	ToolUICompiler,
	ToolResourceCompiler,
	ToolTranslator,
	ToolDocBuilder,
	ToolArchiver,
}
