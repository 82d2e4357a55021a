package vfs

import "time"

// HomeDir is where sessions start and where `cd ~` leads.
const HomeDir = "/home/user"

// Seed builds the tree every run starts from.
func Seed(now time.Time) *Node {
	md := func(perms, owner string) Metadata {
		return Metadata{Created: now, Modified: now, Permissions: perms, Owner: owner}
	}
	userDir := md(PermDir, DefaultOwner)
	userFile := md(PermFile, DefaultOwner)

	return NewDir("/", md(PermDir, "root"),
		NewDir("home", md(PermDir, "root"),
			NewDir("user", userDir,
				NewDir("documents", userDir,
					NewFile("welcome.txt", "Welcome to termsim!\n\n"+
						"This is an interactive terminal simulator.\n"+
						`Try typing "help" to see available commands.`, userFile),
					NewFile("projects.txt", "Project Ideas:\n"+
						"1. AI-powered task manager\n"+
						"2. Blockchain voting system\n"+
						"3. AR navigation app", userFile),
				),
				NewDir("pictures", userDir,
					NewFile("avatar.png", "[PNG IMAGE DATA]", userFile),
				),
				NewFile(".bashrc", "# User bashrc configuration\n"+
					"export PATH=$PATH:/usr/local/bin\n"+
					"alias ll=\"ls -la\"\n", userFile),
			),
		),
		NewDir("bin", md(PermDir, "root"),
			NewFile("echo", "[BINARY]", md("rwxr-xr-x", "root")),
		),
		NewDir("etc", md(PermDir, "root"),
			NewFile("passwd", "root:x:0:0:root:/root:/bin/bash\n"+
				"user:x:1000:1000:User:/home/user:/bin/bash", md("r--r--r--", "root")),
		),
	)
}
