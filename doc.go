// Package pbtool compiles, deploys and packages plugins of the QGIS desktop
// GIS. What belongs to a plugin is declared in a [pbcfg.Config] that is
// parsed into a [pbcfg.Project].
//
// A plugin project consists of Python sources, Qt UI and resource
// definitions, extra files and directories, HTML help and translations:
//
//	myplugin/
//	├── __init__.py
//	├── myplugin.py
//	├── myplugin_dialog_base.ui
//	├── options.ui          → options.py
//	├── resources.qrc       → resources_rc.py
//	├── icon.png
//	├── metadata.txt
//	├── help/               make html → help/build/html
//	├── i18n/de.ts          lrelease → i18n/de.qm
//	└── pb_tool.cfg
//
// UI and resource definitions are compiled by external tools only when the
// derived Python module is older than its source, see [IsStale]. A [Deployer]
// copies the [Manifest] of the project into the plugin directory below
// [PluginRoot]. All external tools are found through the PATH of a
// [pbkore.Env] and can be replaced in the tools section of the
// configuration.
package pbtool
